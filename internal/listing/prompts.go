package listing

const analystSystemPrompt = "You are an expert at analyzing classified marketplace listings and extracting key information for potential buyers. Provide clear, structured summaries that highlight important details, potential concerns, and value assessments."

const textAnalysisPrompt = `Please analyze this listing HTML content and extract key information. Focus on:

1. Item title/name
2. Price (asking price, if negotiable)
3. Item description and condition
4. Location
5. Contact information
6. Key features or specifications
7. Any red flags or concerns
8. Posted date if available

Provide a comprehensive summary that would be useful for someone considering purchasing this item. Format it as a clear, structured description.

Here's the HTML content:
`

const imageAnalysisPrompt = `Please analyze these images from the listing and describe:
1. What you see in the images
2. Condition of the item(s)
3. Any notable details or features
4. Quality of the photos
5. Any potential concerns visible in the images

Provide a detailed description that would help a potential buyer understand what they're looking at.`
